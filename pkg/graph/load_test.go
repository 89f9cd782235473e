package graph

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadData(t *testing.T) {
	original := &Data{
		Nodes: []Node{deg(49.2, -123.1), deg(49.3, -123.0)},
		Ways:  []Way{{Tags: []string{"highway/primary"}, Nodes: []int{0, 1}}},
	}

	t.Run("plain json roundtrip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeData(&buf, original, false))

		loaded, err := LoadData(&buf)
		require.NoError(t, err)
		assert.Equal(t, original, loaded)
	})

	t.Run("gzip roundtrip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, EncodeData(&buf, original, true))
		require.Equal(t, byte(0x1f), buf.Bytes()[0], "output is not gzip")

		loaded, err := LoadData(&buf)
		require.NoError(t, err)
		assert.Equal(t, original, loaded)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := LoadData(strings.NewReader(`{"nodes": [`))
		assert.Error(t, err)
	})

	t.Run("rejects out of range node index", func(t *testing.T) {
		_, err := LoadData(strings.NewReader(`{"nodes":[{"lat":0,"long":0}],"ways":[{"tags":[],"nodes":[0,1]}]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "references node 1")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := LoadData(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("negative index fails", func(t *testing.T) {
		d := &Data{Nodes: []Node{{}}, Ways: []Way{{Nodes: []int{-1}}}}
		assert.Error(t, d.Validate())
	})

	t.Run("empty data is valid", func(t *testing.T) {
		assert.NoError(t, (&Data{}).Validate())
	})
}
