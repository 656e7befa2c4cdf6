package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendMongo     = "mongo"
	BackendSQLite    = "sqlite"

	BackendGCS = "gcs"
	BackendS3  = "s3"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	ProjectID         string `env:"GCP_PROJECT" envDefault:"personal-site-466302"`
	FirestoreDatabase string `env:"FIRESTORE_DATABASE" envDefault:"personal-site-md"`
	Collection        string `env:"PHOTO_COLLECTION" envDefault:"pictures-collection"`
	Bucket            string `env:"BUCKET_NAME" envDefault:"personal-site-bucket-1"`
	FolderPrefix      string `env:"FOLDER_PREFIX" envDefault:"images/"`

	DocumentBackend string `env:"DOCUMENT_BACKEND" envDefault:"firestore"`
	BlobBackend     string `env:"BLOB_BACKEND" envDefault:"gcs"`

	DatabaseURL   string `env:"DATABASE_URL"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"personal-site"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"photos.db"`

	AWSRegion  string `env:"AWS_REGION" envDefault:"us-east-1"`
	S3Endpoint string `env:"S3_ENDPOINT"`

	Map MapConfig
}

// MapConfig is the initial view of the world map.
type MapConfig struct {
	CenterLat float64 `env:"MAP_CENTER_LAT" envDefault:"20"`
	CenterLon float64 `env:"MAP_CENTER_LON" envDefault:"0"`
	Zoom      int     `env:"MAP_ZOOM" envDefault:"2"`
	Width     int     `env:"MAP_WIDTH" envDefault:"1200"`
	Height    int     `env:"MAP_HEIGHT" envDefault:"600"`
	Tiles     string  `env:"MAP_TILES" envDefault:"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.DocumentBackend {
	case BackendFirestore:
		if c.ProjectID == "" {
			errs = append(errs, errors.New("GCP_PROJECT is not set"))
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is not set"))
		}
	case BackendMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI is not set"))
		}
	case BackendSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, errors.New("SQLITE_PATH is not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown DOCUMENT_BACKEND %q", c.DocumentBackend))
	}

	switch c.BlobBackend {
	case BackendGCS, BackendS3:
	default:
		errs = append(errs, fmt.Errorf("unknown BLOB_BACKEND %q", c.BlobBackend))
	}

	if c.Bucket == "" {
		errs = append(errs, errors.New("BUCKET_NAME is not set"))
	}
	if c.Collection == "" {
		errs = append(errs, errors.New("PHOTO_COLLECTION is not set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
