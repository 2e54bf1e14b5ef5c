// Package client provides the client SDK for the halap conversational
// service.
//
// A Client resolves its configuration through a pluggable ConfigProvider and
// issues requests through an injectable Doer, so transports and credential
// sources stay external to the SDK. The streaming entry point is ChatStream,
// which returns a pull-based event stream decoded by pkg/encoding/sse; the
// remaining methods are plain request/response accessors for conversation
// history and previously produced artifacts.
//
// Example usage:
//
//	c, err := client.New(client.StaticProvider{Cfg: client.Config{
//		APIURL:   "https://api.example.com",
//		APIToken: token,
//	}})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	stream, err := c.ChatStream(ctx, client.ChatRequest{Query: "hello"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer stream.Close()
//
//	for stream.Next() {
//		switch event := stream.Current().(type) {
//		case *events.TextDeltaEvent:
//			fmt.Print(event.Delta)
//		}
//	}
package client
