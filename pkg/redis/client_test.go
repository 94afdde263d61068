package redis

import (
	"context"
	"testing"

	"github.com/jvboschetti/acai-storefront/pkg/config"
)

func TestChannelKeyNamespacing(t *testing.T) {
	client := &Client{}
	if got := client.ChannelKey("orders.changed"); got != "acai:orders.changed" {
		t.Fatalf("unexpected channel key %q", got)
	}
}

func TestOptionsFromConfigRequiresEndpoint(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when neither url nor address is set")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %q", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("unexpected db %d", opts.DB)
	}
}

func TestOptionsFromConfigAddressFallback(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{Address: "10.0.0.5:6380", Password: "pw", DB: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "10.0.0.5:6380" || opts.Password != "pw" || opts.DB != 1 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestUninitializedClientErrors(t *testing.T) {
	var client *Client
	if err := client.Publish(context.Background(), "orders.changed", "ping"); err == nil {
		t.Fatal("expected error for uninitialized client")
	}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error for uninitialized client")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("close on uninitialized client should be a no-op, got %v", err)
	}
}
