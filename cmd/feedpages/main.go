package main

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"github.com/momo66-22/telegram-feed-pages/config"
	"github.com/momo66-22/telegram-feed-pages/init/db"
	"github.com/momo66-22/telegram-feed-pages/internal/feed"
	"github.com/momo66-22/telegram-feed-pages/internal/kvstore"
	"github.com/momo66-22/telegram-feed-pages/internal/reaction"
	"github.com/momo66-22/telegram-feed-pages/internal/view"
	"github.com/momo66-22/telegram-feed-pages/pkg/handlers"
	"github.com/momo66-22/telegram-feed-pages/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const ConfigPath = "./config/"

func main() {
	contextLogger := logrus.WithFields(logrus.Fields{
		"logger": "LOGRUS",
	})

	err := config.LoadConfig(ConfigPath)
	if err != nil {
		contextLogger.Fatalf("read config failed: %v\n", err)
		return
	}

	tmpl := template.Must(template.ParseFiles("static/html/index.html"))

	var store kvstore.Store
	switch config.C.App.Storage {
	case "mongodb":
		mongoDB, err := db.InitMongo()
		if err != nil {
			contextLogger.Fatal(err)
			return
		}
		store = kvstore.NewMongoRepo(mongoDB)
	case "mysql":
		mysqlDB, err := db.InitMySQL()
		if err != nil {
			contextLogger.Fatal(err)
			return
		}
		defer func() {
			if err = mysqlDB.Close(); err != nil {
				contextLogger.Error(err)
			}
		}()
		store = kvstore.NewMySQLRepo(mysqlDB)
	default:
		store = kvstore.NewMemoryRepo()
	}

	reactionRepo := reaction.NewKVRepo(store, config.C.App.Reactions)
	viewRepo := view.NewKVRepo(store, time.Duration(config.C.App.SeenTTLHour)*time.Hour)

	feedRepo, err := feed.NewFileRepo(config.C.App.PostsPath)
	if err == feed.ErrNoPosts {
		contextLogger.Warnf("posts document %s missing, serving empty feed", config.C.App.PostsPath)
		feedRepo = feed.NewEmptyRepo()
	} else if err != nil {
		contextLogger.Fatal(err)
		return
	}

	reactionHandler := handlers.NewReactionHandler(reactionRepo, contextLogger)
	viewHandler := handlers.NewViewHandler(viewRepo, contextLogger)
	feedHandler := handlers.NewFeedHandler(feedRepo, contextLogger)
	homepageHandler := handlers.NewHomepageHandler(tmpl, contextLogger)

	r := mux.NewRouter()
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir("static/")))
	r.PathPrefix("/static/").Handler(fileServer).Methods("GET")
	r.HandleFunc("/api/reactions", reactionHandler.Get).Methods("GET")
	r.HandleFunc("/api/reactions/toggle", reactionHandler.Toggle).Methods("POST")
	r.HandleFunc("/api/views", viewHandler.Get).Methods("GET")
	r.HandleFunc("/api/views/seen", viewHandler.Seen).Methods("POST")
	r.HandleFunc("/api/posts", feedHandler.GetList).Methods("GET")
	r.PathPrefix("/").Handler(homepageHandler)

	h := middleware.CheckContentType(contextLogger, r)
	h = middleware.AccessLog(contextLogger, h)

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", config.C.App.Port),
		Handler: h,
	}
	if err := server.ListenAndServe(); err != nil {
		contextLogger.Fatalf("unable to start server: %v\n", err)
	}
}
