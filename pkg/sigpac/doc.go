// Package sigpac validates Spanish rural cadastral references and aggregates
// SIGPAC enclosure data into parcels.
//
// SIGPAC is the Spanish agricultural parcel identification system. Every
// rural parcel is identified by a 20-character cadastral reference; each
// parcel is split into enclosures (recintos), one per land use.
//
// # References
//
// Parse and build references with a Codec:
//
//	codec := sigpac.NewCodec(nil)
//	ref, err := codec.Parse("29008A008005720000EQ")
//	if err != nil {
//	    var checksum *sigpac.ErrInvalidChecksum
//	    if errors.As(err, &checksum) {
//	        fmt.Printf("expected %s, got %s\n", checksum.Expected, checksum.Actual)
//	    }
//	    return err
//	}
//
//	fmt.Println(ref.Province(), ref.Municipality(), ref.Polygon(), ref.Parcel())
//
//	s, err := codec.Build(sigpac.Fields{Province: 26, Municipality: 2, Polygon: 1, Parcel: 1})
//	// s == "26002A001000010000EQ"
//
// Urban references (a digit in the section position) are rejected with
// ErrUnsupportedDomain.
//
// # Communities
//
// The registry is partitioned by autonomous community:
//
//	community, ok := sigpac.ResolveCommunity(29) // 1, true (Andalucía)
//
// # Registry queries
//
// This package does not talk to the registry. It renders the resource path a
// registry client needs and turns the client's response into a parcel:
//
//	loc := sigpac.LocationFromReference(ref)
//	path, _ := loc.QueryPath() // "recinfoparc/29/8/0/0/8/572"
//
//	// ... fetch path + ".geojson" from the registry ...
//
//	agg := sigpac.NewAggregator(sigpac.DefaultAggregateOptions())
//	parcel, err := agg.AggregateGeoJSON(body)
//	fmt.Println(parcel.Summary().ParcelInfo.TotalSurface)
//
// The merged geometry is the union of all enclosure outlines. Land-use areas
// are grouped by code and rounded to four decimals; the total surface is not
// rounded.
//
// # Concurrency
//
// Codec, Aggregator and the lookup functions are safe for concurrent use.
// AggregateParallel aggregates many registry responses with a bounded pool.
package sigpac
