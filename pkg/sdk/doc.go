// Package dinefinder embeds the nearby restaurant search in a Go program
// without running the HTTP server.
//
// The catalog is loaded once from a YAML/JSON file or from Valkey/Redis
// and then shared read-only by every query.
//
//	client, _ := dinefinder.New(ctx, dinefinder.WithCatalogFile("data/restaurants.yaml"))
//	defer client.Close()
//
//	res, _ := client.Nearby(ctx, dinefinder.NearbyQuery{
//	    Address:   "Times Square",
//	    Cuisine:   "italian",
//	    MinRating: dinefinder.Float(4.5),
//	})
//	for _, r := range res.Restaurants {
//	    fmt.Printf("%s %.2f km\n", r.Name, r.DistanceKm)
//	}
package dinefinder
