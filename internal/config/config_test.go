package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("expected http_addr :8080, got %q", cfg.HTTPAddr)
	}
	if cfg.GRPCAddr != ":50051" {
		t.Errorf("expected grpc_addr :50051, got %q", cfg.GRPCAddr)
	}
	if cfg.ArtistAccount != "artist" {
		t.Errorf("expected artist_account artist, got %q", cfg.ArtistAccount)
	}
	if cfg.RegistryAccount != "registry" {
		t.Errorf("expected registry_account registry, got %q", cfg.RegistryAccount)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected worker_count 4, got %d", cfg.WorkerCount)
	}
	if cfg.EventQueueSize != 10000 {
		t.Errorf("expected event_queue_size 10000, got %d", cfg.EventQueueSize)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `http_addr: ":9090"
artist_account: "monet"
worker_count: 8
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Errorf("expected http_addr :9090, got %q", cfg.HTTPAddr)
	}
	if cfg.ArtistAccount != "monet" {
		t.Errorf("expected artist_account monet, got %q", cfg.ArtistAccount)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("expected worker_count 8, got %d", cfg.WorkerCount)
	}
	// Untouched keys keep their defaults
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("expected default redis_addr, got %q", cfg.RedisAddr)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("grpc_addr: \":7000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("ARTREGISTRY_GRPC_ADDR", ":7001")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GRPCAddr != ":7001" {
		t.Errorf("expected env to win with :7001, got %q", cfg.GRPCAddr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_SameAccounts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `artist_account: "same"
registry_account: "same"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error when artist and registry accounts collide")
	}
}
