package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("NEWSAPI_KEY", "")
	t.Setenv("COHERE_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_DB", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.NewsAPIKey != "" {
		t.Fatalf("expected empty news API key, got %q", cfg.NewsAPIKey)
	}
	if cfg.CohereModel == "" {
		t.Fatal("expected a default cohere model")
	}
	if cfg.RedisDB != 0 {
		t.Fatalf("expected redis db 0, got %d", cfg.RedisDB)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("NEWSAPI_KEY", "news-key")
	t.Setenv("COHERE_API_KEY", "cohere-key")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.NewsAPIKey != "news-key" {
		t.Fatalf("expected news-key, got %q", cfg.NewsAPIKey)
	}
	if cfg.CohereAPIKey != "cohere-key" {
		t.Fatalf("expected cohere-key, got %q", cfg.CohereAPIKey)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("unexpected redis addr %q", cfg.RedisAddr)
	}
	if cfg.RedisDB != 3 {
		t.Fatalf("expected redis db 3, got %d", cfg.RedisDB)
	}
}

func TestGetEnvOrDefaultIntIgnoresGarbage(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := Load()
	if cfg.RedisDB != 0 {
		t.Fatalf("expected fallback to 0, got %d", cfg.RedisDB)
	}
}
