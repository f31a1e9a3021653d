package config

import (
	"fmt"
	"strings"

	"inges/filesystem"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	WebsocketUrlKey = "websocket_url"
	RpcUrlKey       = "rpc_url"
)

var indexerRequiredKeys = []string{WebsocketUrlKey, RpcUrlKey}

// IndexerConfig holds the endpoints consumed by `inges run`.
type IndexerConfig struct {
	WebsocketUrl string `koanf:"websocket_url"`
	RpcUrl       string `koanf:"rpc_url"`
}

func DefaultIndexerConfig() *IndexerConfig {
	return &IndexerConfig{}
}

func (c *IndexerConfig) String() string {
	var sb strings.Builder
	sb.WriteString("IndexerConfig {\n")
	fmt.Fprintf(&sb, "    %s: %q,\n", WebsocketUrlKey, c.WebsocketUrl)
	fmt.Fprintf(&sb, "    %s: %q,\n", RpcUrlKey, c.RpcUrl)
	sb.WriteString("}")
	return sb.String()
}

// Load reads the TOML file at path and validates it. Failures are either
// *ReadError or *ParseError, no partial config is ever returned.
func Load(path string) (*IndexerConfig, error) {
	content, err := filesystem.ReadTextFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return Parse(content)
}

func Parse(content []byte) (*IndexerConfig, error) {
	k := koanf.New(".")
	err := k.Load(rawbytes.Provider(content), toml.Parser())
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	for _, key := range indexerRequiredKeys {
		if !k.Exists(key) {
			return nil, &ParseError{Err: fmt.Errorf("missing field `%s`", key)}
		}
		if _, ok := k.Get(key).(string); !ok {
			return nil, &ParseError{Err: fmt.Errorf("invalid type for field `%s`: expected a string", key)}
		}
	}

	config := DefaultIndexerConfig()
	err = k.Unmarshal("", config)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return config, nil
}
