package shardqueue

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"SQ_SHARDS", "SQ_QUEUE_SIZE", "SQ_ENQUEUE_TIMEOUT", "SQ_MAX_ATTEMPTS", "SQ_BASE_BACKOFF", "SQ_MAX_INTERVAL"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shards != 4 || cfg.QueueSize != 128 {
		t.Fatalf("defaults: shards=%d queue=%d", cfg.Shards, cfg.QueueSize)
	}
	if cfg.EnqueueTimeout != 100*time.Millisecond {
		t.Fatalf("default enqueue timeout: %v", cfg.EnqueueTimeout)
	}
	if cfg.MaxAttempts != 8 || cfg.BaseBackoff != 100*time.Millisecond || cfg.MaxInterval != 20*time.Second {
		t.Fatalf("default retry settings: %+v", cfg)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SQ_SHARDS", "2")
	t.Setenv("SQ_QUEUE_SIZE", "64")
	t.Setenv("SQ_ENQUEUE_TIMEOUT", "50ms")
	t.Setenv("SQ_MAX_ATTEMPTS", "3")
	t.Setenv("SQ_BASE_BACKOFF", "25ms")
	t.Setenv("SQ_MAX_INTERVAL", "2s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Shards != 2 || cfg.QueueSize != 64 || cfg.MaxAttempts != 3 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.EnqueueTimeout != 50*time.Millisecond || cfg.BaseBackoff != 25*time.Millisecond || cfg.MaxInterval != 2*time.Second {
		t.Fatalf("duration overrides not applied: %+v", cfg)
	}
}
