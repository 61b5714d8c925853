package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `yaml:"app"`
	MySQL  DBConfig     `yaml:"mysql"`
	Mongo  DBConfig     `yaml:"mongodb"`
	Client ClientConfig `yaml:"client"`
}

type DBConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"db_name"`
}

type AppConfig struct {
	Port        int      `yaml:"port"`
	Storage     string   `yaml:"storage"`
	Reactions   []string `yaml:"reactions"`
	SeenTTLHour int      `yaml:"seen_ttl_hour"`
	PostsPath   string   `yaml:"posts_path"`
}

type ClientConfig struct {
	BaseURL               string `yaml:"base_url"`
	TimeoutSecond         int    `yaml:"timeout_second"`
	RefreshIntervalSecond int    `yaml:"refresh_interval_second"`
	IdentityPath          string `yaml:"identity_path"`
}

var C Config

func LoadConfig(path string) error {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.AutomaticEnv()

	viper.SetDefault("app.port", 8080)
	viper.SetDefault("app.storage", "memory")
	viper.SetDefault("app.reactions", []string{"❤", "👍", "🔥"})
	viper.SetDefault("app.seen_ttl_hour", 24)
	viper.SetDefault("app.posts_path", "static/posts.json")
	viper.SetDefault("client.base_url", "http://localhost:8080")
	viper.SetDefault("client.timeout_second", 8)
	viper.SetDefault("client.refresh_interval_second", 45)
	viper.SetDefault("client.identity_path", ".feed_uid")

	err := viper.ReadInConfig()
	if err != nil {
		return err
	}

	C.App.Port = viper.GetInt("app.port")
	C.App.Storage = viper.GetString("app.storage")
	C.App.Reactions = viper.GetStringSlice("app.reactions")
	C.App.SeenTTLHour = viper.GetInt("app.seen_ttl_hour")
	C.App.PostsPath = viper.GetString("app.posts_path")

	C.MySQL.Port = viper.GetInt("mysql.port")
	C.MySQL.User = viper.GetString("mysql.user")
	C.MySQL.Password = viper.GetString("mysql.password")
	C.MySQL.Host = viper.GetString("mysql.host")
	C.MySQL.Name = viper.GetString("mysql.db_name")

	C.Mongo.Host = viper.GetString("mongodb.host")
	C.Mongo.Port = viper.GetInt("mongodb.port")
	C.Mongo.Name = viper.GetString("mongodb.db_name")

	C.Client.BaseURL = viper.GetString("client.base_url")
	C.Client.TimeoutSecond = viper.GetInt("client.timeout_second")
	C.Client.RefreshIntervalSecond = viper.GetInt("client.refresh_interval_second")
	C.Client.IdentityPath = viper.GetString("client.identity_path")

	return nil
}

func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecond) * time.Second
}

func (c ClientConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSecond) * time.Second
}
