// Package gateway exposes the news-impact query pipeline as an MCP server.
//
// A Gateway owns one injected Store and serves four protocol methods:
// initialize, tools/list, tools/call, and resources/read. A tools/call runs
// the validate→translate→execute→normalize pipeline and ends in exactly one
// of four terminal responses: Rejected, StoreFailure, Empty, or Ready. Only a
// Ready response carries the render-enable metadata for the widget; the
// static tool advertisement always declares rendering disabled.
//
// Example usage:
//
//	st, err := store.Open(ctx, store.Config{
//	    URI:        "mongodb://localhost:27017",
//	    Database:   "newsdb",
//	    Collection: "news",
//	}, log)
//	if err != nil {
//	    log.Fatal().Err(err).Msg("store open failed")
//	}
//	defer st.Close(ctx)
//
//	gw := gateway.New(st, gateway.Config{
//	    ServerInfo: gateway.ServerInfo{Name: "newsimpact", Version: "1.0.0"},
//	})
//
//	http.ListenAndServe(":8000", gateway.ServeHTTP(gw))
//
// Calls are independent and stateless; a Gateway is safe for concurrent use.
package gateway
