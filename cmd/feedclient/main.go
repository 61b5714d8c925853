package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/momo66-22/telegram-feed-pages/config"
	"github.com/momo66-22/telegram-feed-pages/internal/client"
	"github.com/momo66-22/telegram-feed-pages/internal/identity"
	"github.com/sirupsen/logrus"
)

const ConfigPath = "./config/"

// feedclient drives the reaction controller against a running server:
//
//	feedclient <post_id>          print current reactions and mark seen
//	feedclient <post_id> <emoji>  toggle one reaction, wait for it to settle
func main() {
	contextLogger := logrus.WithFields(logrus.Fields{
		"logger": "LOGRUS",
	})

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <post_id> [emoji]\n", os.Args[0])
		os.Exit(2)
	}
	postID := os.Args[1]

	err := config.LoadConfig(ConfigPath)
	if err != nil {
		contextLogger.Fatalf("read config failed: %v\n", err)
		return
	}

	provider := identity.NewFileProvider(config.C.Client.IdentityPath)
	userID, err := provider.UserID()
	if err != nil {
		contextLogger.Fatalf("unable load identity: %v\n", err)
		return
	}

	api := client.NewClient(config.C.Client.BaseURL, userID, config.C.Client.Timeout())

	ctrl := client.NewController(postID, config.C.App.Reactions, api, contextLogger, nil)
	defer ctrl.Close()

	state, err := api.GetReactions(context.Background(), postID)
	if err != nil {
		contextLogger.Fatalf("unable read reactions: %v\n", err)
		return
	}
	ctrl.SetFromServer(state)

	if len(os.Args) > 2 {
		ctrl.Click(os.Args[2])

		deadline := time.Now().Add(config.C.Client.Timeout() * 2)
		for len(ctrl.Pending()) > 0 && time.Now().Before(deadline) {
			time.Sleep(50 * time.Millisecond)
		}
		if pending := ctrl.Pending(); len(pending) > 0 {
			contextLogger.Warnf("toggle still pending for %v", pending)
		}
	}

	seen, err := api.MarkSeen(context.Background(), postID)
	if err != nil {
		contextLogger.Warnf("unable mark seen: %v", err)
	}

	effective := ctrl.Effective()
	fmt.Printf("user    %s\n", userID)
	fmt.Printf("post    %s\n", postID)
	for _, kind := range config.C.App.Reactions {
		marker := " "
		for _, mine := range effective.Mine {
			if mine == kind {
				marker = "*"
			}
		}
		fmt.Printf("%s %s  %d\n", marker, kind, effective.Counts[kind])
	}
	if seen != nil {
		fmt.Printf("views   %d (counted: %v)\n", seen.Views, seen.Counted)
	}
}
