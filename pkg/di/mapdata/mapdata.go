package mapdata_di

import (
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/graph"
)

// New loads the healed graph interchange document named by MAP_DATA.
// Malformed input is fatal here: the core never operates on partial data.
func New(log *zap.Logger) (*graph.Data, error) {
	viper.SetDefault("MAP_DATA", "data.json")
	path := viper.GetString("MAP_DATA")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := graph.LoadData(f)
	if err != nil {
		return nil, err
	}

	log.Info("loaded map data",
		zap.String("path", path),
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("ways", len(data.Ways)))

	return data, nil
}
