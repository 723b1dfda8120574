package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/beetlebugorg/sigpac/pkg/sigpac"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: parcel-aggregation <recinfoparc.geojson>")
	}

	body, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	opts := sigpac.DefaultAggregateOptions()
	opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	parcel, err := sigpac.NewAggregator(opts).AggregateGeoJSON(body)
	if err != nil {
		log.Fatal(err)
	}

	info := parcel.Summary().ParcelInfo
	fmt.Printf("Parcel %d/%d/%d/%d\n", info.Province, info.Municipality, info.Polygon, info.Parcel)
	fmt.Printf("Surface: %.2f m2\n", info.TotalSurface)

	for _, use := range parcel.LandUses() {
		fmt.Printf("  %-2s %-40s %12.4f\n", use.Code, use.Description, use.Surface)
	}

	out, err := json.MarshalIndent(parcel, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}
