package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/osmnav/wayplanner/pkg/elevation"
	"github.com/osmnav/wayplanner/pkg/graph"
	"github.com/osmnav/wayplanner/pkg/osmparse"
)

var (
	mapFile  = flag.String("f", "", "osm pbf extract to ingest")
	outFile  = flag.String("o", "data.json", "output interchange document (.gz output is gzip-compressed)")
	elevFile = flag.String("elevation", "", "optional Arc/Info ASCII elevation grid")
)

func main() {
	flag.Parse()

	if *mapFile == "" {
		log.Fatal("missing -f: an osm pbf extract is required")
	}

	data, err := osmparse.Parse(*mapFile)
	if err != nil {
		log.Fatal(err)
	}

	if *elevFile != "" {
		ef, err := os.Open(*elevFile)
		if err != nil {
			log.Fatal(err)
		}
		grid, err := elevation.Parse(ef)
		ef.Close()
		if err != nil {
			log.Fatal(err)
		}

		matched := osmparse.AttachHeights(data, grid)
		log.Printf("attached heights to %d/%d nodes", matched, len(data.Nodes))
	}

	out, err := os.Create(*outFile)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := graph.EncodeData(out, data, strings.HasSuffix(*outFile, ".gz")); err != nil {
		log.Fatal(err)
	}

	log.Printf("wrote %s: %d nodes, %d ways", *outFile, len(data.Nodes), len(data.Ways))
}
