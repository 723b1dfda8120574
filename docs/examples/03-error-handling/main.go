package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/sigpac/pkg/sigpac"
)

func describe(codec sigpac.Codec, raw string) {
	ref, err := codec.Parse(raw)
	if err == nil {
		fmt.Printf("%-24q valid (%s)\n", raw, ref.Layer())
		return
	}

	var (
		format   *sigpac.ErrFormat
		urban    *sigpac.ErrUnsupportedDomain
		checksum *sigpac.ErrInvalidChecksum
	)
	switch {
	case errors.As(err, &checksum):
		fmt.Printf("%-24q bad control characters: expected %s, got %s\n", raw, checksum.Expected, checksum.Actual)
	case errors.As(err, &urban):
		fmt.Printf("%-24q urban reference, not supported\n", raw)
	case errors.As(err, &format):
		fmt.Printf("%-24q malformed: %s\n", raw, format.Reason)
	default:
		log.Printf("unexpected error: %v", err)
	}
}

func main() {
	codec := sigpac.NewCodec(nil)

	for _, raw := range []string{
		"29008A008005720000EQ",
		"29008A008005720000OL",
		"9872023VH5797S0001WX",
		"29008A0080057",
	} {
		describe(codec, raw)
	}

	// Provinces outside Spain have no community
	if _, err := sigpac.CommunityFor(60); err != nil {
		var unknown *sigpac.ErrUnknownRegion
		if errors.As(err, &unknown) {
			fmt.Printf("province %d: %v\n", unknown.Province, err)
		}
	}

	// Aggregating an empty response
	_, err := sigpac.NewAggregator(sigpac.DefaultAggregateOptions()).
		AggregateGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	var noData *sigpac.ErrNoData
	if errors.As(err, &noData) {
		fmt.Printf("empty response: %v\n", err)
	}
}
