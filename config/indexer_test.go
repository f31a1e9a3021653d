package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseIndexerConfig(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		websocketUrl string
		rpcUrl       string
	}{
		{
			"example",
			"websocket_url = \"wss://example.host/ws\"\nrpc_url = \"https://example.host/rpc\"\n",
			"wss://example.host/ws",
			"https://example.host/rpc",
		},
		{
			"empty_values",
			"websocket_url = \"\"\nrpc_url = \"\"\n",
			"",
			"",
		},
		{
			"not_urls",
			"rpc_url = 'just some text'\nwebsocket_url = \"ws:// with spaces\"\n",
			"ws:// with spaces",
			"just some text",
		},
		{
			"extra_keys",
			"websocket_url = \"a\"\nrpc_url = \"b\"\nchain_id = 7\n\n[extra]\nkey = \"value\"\n",
			"a",
			"b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content))
			if err != nil {
				t.Fatalf("Error while parsing config. %v", err)
			}
			if cfg.WebsocketUrl != tt.websocketUrl {
				t.Fatalf("websocket_url mismatch. Expected '%s' Actual '%s'", tt.websocketUrl, cfg.WebsocketUrl)
			}
			if cfg.RpcUrl != tt.rpcUrl {
				t.Fatalf("rpc_url mismatch. Expected '%s' Actual '%s'", tt.rpcUrl, cfg.RpcUrl)
			}
		})
	}
}

func TestParseIndexerConfigError(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"missing_rpc_url", "websocket_url = \"wss://example.host/ws\"\n", "missing field `rpc_url`"},
		{"missing_websocket_url", "rpc_url = \"https://example.host/rpc\"\n", "missing field `websocket_url`"},
		{"empty", "", "missing field"},
		{"wrong_type", "websocket_url = \"a\"\nrpc_url = 8545\n", "invalid type for field `rpc_url`"},
		{"table", "rpc_url = \"b\"\n[websocket_url]\nhost = \"a\"\n", "invalid type for field `websocket_url`"},
		{"syntax", "websocket_url = \"a\nrpc_url = \"b\"\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content))
			if err == nil {
				t.Fatalf("Expected parse error. Actual config %v", cfg)
			}
			if cfg != nil {
				t.Fatalf("Partial config returned alongside error. %v", cfg)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Error is not a ParseError. %T %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Fatalf("Error message mismatch. Expected to contain '%s' Actual '%s'", tt.message, err.Error())
			}
		})
	}
}

func TestLoadIndexerConfig(t *testing.T) {
	dir := t.TempDir()
	validFile := filepath.Join(dir, "valid.toml")
	writeTestFile(t, validFile, []byte("websocket_url = \"wss://example.host/ws\"\nrpc_url = \"https://example.host/rpc\"\n"))

	cfg, err := Load(validFile)
	if err != nil {
		t.Fatalf("Error while loading config. %v", err)
	}
	if cfg.WebsocketUrl != "wss://example.host/ws" || cfg.RpcUrl != "https://example.host/rpc" {
		t.Fatalf("Config mismatch. Actual %v", cfg)
	}
}

func TestLoadIndexerConfigError(t *testing.T) {
	dir := t.TempDir()
	binaryFile := filepath.Join(dir, "binary.toml")
	writeTestFile(t, binaryFile, []byte{0xff, 0xfe, 0x00, 0x80})
	missingRpcFile := filepath.Join(dir, "missing_rpc.toml")
	writeTestFile(t, missingRpcFile, []byte("websocket_url = \"wss://example.host/ws\"\n"))

	tests := []struct {
		name     string
		path     string
		readErr  bool
		parseErr bool
	}{
		{"not_exist", filepath.Join(dir, "nope.toml"), true, false},
		{"directory", dir, true, false},
		{"not_text", binaryFile, true, false},
		{"missing_rpc_url", missingRpcFile, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.path)
			if err == nil {
				t.Fatalf("Expected load error. Actual config %v", cfg)
			}
			var readErr *ReadError
			var parseErr *ParseError
			if errors.As(err, &readErr) != tt.readErr {
				t.Fatalf("ReadError mismatch. Expected %t Actual %v", tt.readErr, err)
			}
			if errors.As(err, &parseErr) != tt.parseErr {
				t.Fatalf("ParseError mismatch. Expected %t Actual %v", tt.parseErr, err)
			}
			if tt.readErr && readErr.Path != tt.path {
				t.Fatalf("ReadError path mismatch. Expected '%s' Actual '%s'", tt.path, readErr.Path)
			}
		})
	}
}

func TestDefaultIndexerConfig(t *testing.T) {
	cfg := DefaultIndexerConfig()
	if cfg.WebsocketUrl != "" || cfg.RpcUrl != "" {
		t.Fatalf("Default config must be empty. Actual %v", cfg)
	}
	expected := "IndexerConfig {\n    websocket_url: \"\",\n    rpc_url: \"\",\n}"
	if cfg.String() != expected {
		t.Fatalf("Dump mismatch. Expected '%s' Actual '%s'", expected, cfg.String())
	}
}

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Cannot write test file %s. %v", path, err)
	}
}
