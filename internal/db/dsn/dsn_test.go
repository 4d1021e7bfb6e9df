package dsn

import (
	"testing"

	"github.com/GoSitesAdmin/GoSitesAdmin/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "url wins over host fields",
			cfg: config.Config{
				DB: config.DB{
					URL:  "postgres://toolbox:secret@db:5432/sites",
					Host: "ignored",
					Port: 1234,
				},
			},
			want: "postgres://toolbox:secret@db:5432/sites",
		},
		{
			name: "host fields with default sslmode",
			cfg: config.Config{
				DB: config.DB{
					Host:     "localhost",
					Port:     5432,
					User:     "toolbox",
					Password: "changeme",
					Name:     "sites",
				},
			},
			want: "host=localhost port=5432 user=toolbox password=changeme dbname=sites sslmode=disable",
		},
		{
			name: "explicit sslmode",
			cfg: config.Config{
				DB: config.DB{
					Host:     "db.internal",
					Port:     5432,
					User:     "toolbox",
					Password: "changeme",
					Name:     "sites",
					SSLMode:  "require",
				},
			},
			want: "host=db.internal port=5432 user=toolbox password=changeme dbname=sites sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Create(&tt.cfg); got != tt.want {
				t.Errorf("Create() = %q, want %q", got, tt.want)
			}
		})
	}
}
