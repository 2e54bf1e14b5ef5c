// Package main provides a minimal command-line front end for the halap SDK.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/halap/go-sdk/pkg/client"
	"github.com/halap/go-sdk/pkg/core/events"
)

func main() {
	conversationID := flag.String("conversation", "", "continue an existing conversation")
	userID := flag.String("user", "", "external user id (generated when empty)")
	flag.Parse()

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		fmt.Fprintln(os.Stderr, "usage: halap-cli [-conversation id] [-user id] <query>")
		os.Exit(2)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	c, err := client.New(client.EnvProvider{}, client.WithLogger(logger))
	if err != nil {
		logger.WithError(err).Fatal("failed to create client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req := client.ChatRequest{Query: query, ExternalUserID: *userID}
	if *conversationID != "" {
		req.ConversationID = conversationID
	}

	stream, err := c.ChatStream(ctx, req)
	if err != nil {
		logger.WithError(err).Fatal("failed to start stream")
	}
	defer stream.Close()

	for stream.Next() {
		switch event := stream.Current().(type) {
		case *events.TextDeltaEvent:
			fmt.Print(event.Delta)
		case *events.ToolCallEvent:
			fmt.Fprintf(os.Stderr, "\n[calling %s]\n", event.ToolName)
		case *events.ArtifactsEvent:
			for _, book := range event.Books {
				fmt.Fprintf(os.Stderr, "\n[book] %s — %s\n", book.Title, book.Author)
			}
		case *events.ErrorEvent:
			fmt.Fprintf(os.Stderr, "\n[server error %s] %s\n", event.Code, event.Message)
		case *events.DoneEvent:
			fmt.Fprintf(os.Stderr, "\n[done in %dms, %d+%d tokens]\n",
				event.ExecutionTimeMs, event.TotalTokens.Input, event.TotalTokens.Output)
		}
	}
	fmt.Println()

	if err := stream.Err(); err != nil {
		logger.WithError(err).Fatal("stream failed")
	}

	if result := stream.Result(); result.ConversationID != nil {
		fmt.Fprintf(os.Stderr, "conversation: %s\n", *result.ConversationID)
	}
}
