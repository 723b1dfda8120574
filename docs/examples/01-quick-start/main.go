package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/sigpac/pkg/sigpac"
)

func main() {
	codec := sigpac.NewCodec(nil)

	// Parse a reference
	ref, err := codec.Parse("29008A008005720000EQ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Province: %d\n", ref.Province())
	fmt.Printf("Municipality: %d\n", ref.Municipality())
	fmt.Printf("Polygon: %d, parcel: %d\n", ref.Polygon(), ref.Parcel())
	fmt.Printf("Layer: %s\n", ref.Layer())

	community, err := ref.Community()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Community: %d\n", community)

	// Build a reference from its fields
	built, err := codec.Build(sigpac.Fields{Province: 26, Municipality: 2, Polygon: 1, Parcel: 1})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Built: %s\n", built)

	// Registry path for the parcel
	path, err := sigpac.LocationFromReference(ref).QueryPath()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Query: %s.geojson\n", path)
}
