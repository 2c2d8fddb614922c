// cctx CLI - CodeChain transaction encoder
//
// This CLI turns YAML transaction descriptions into their canonical RLP
// bytes, signing hash and JSON form, and decodes RLP back to JSON.
//
// Example usage:
//
//	# Encode a transaction request
//	cctx encode change-asset-scheme.yaml
//
//	# Decode envelope RLP
//	cctx decode 0xf851800a...
//
//	# Derive the platform address of a private key
//	cctx address ede1d4cc...
//
// Settings come from ./cctx.yaml and CCTX_* environment variables
// (network_id, log_level, output).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/suffix-labs/codechain-tx/pkg/api"
	"github.com/suffix-labs/codechain-tx/pkg/config"
	"github.com/suffix-labs/codechain-tx/pkg/primitives"
)

const version = "cctx v0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	network, _ := cfg.Network()
	app := &cli{cfg: cfg, network: network, logger: logger}

	command := os.Args[1]
	switch command {
	case "encode":
		err = app.cmdEncode(os.Args[2:])
	case "decode":
		err = app.cmdDecode(os.Args[2:])
	case "address":
		err = app.cmdAddress(os.Args[2:])
	case "parse-address":
		err = app.cmdParseAddress(os.Args[2:])
	case "version":
		fmt.Println(version)
		fmt.Println("Canonical RLP/JSON encoder for CodeChain transactions")
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = lvl
	return zc.Build()
}

func printUsage() {
	fmt.Println(`cctx - CodeChain transaction encoder

Usage:
  cctx <command> [arguments]

Commands:
  encode <file.yaml>           Encode a transaction request (RLP, hash, JSON)
  decode <hex>                 Decode envelope RLP to JSON
  address <private-key>        Derive account id and platform address
  parse-address <address>      Validate a platform address
  version                      Show version information
  help                         Show this help message

Configuration (./cctx.yaml or CCTX_* environment):
  network_id   default network (tc)
  log_level    debug, info, warn, error (info)
  output       text or json (text)`)
}

type cli struct {
	cfg     *config.Config
	network primitives.NetworkID
	logger  *zap.Logger
}

func (c *cli) cmdEncode(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cctx encode <file.yaml>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	req, err := api.ParseRequest(data)
	if err != nil {
		return err
	}
	u, err := api.BuildTransaction(req, c.network)
	if err != nil {
		return err
	}
	enc, err := api.Encode(u)
	if err != nil {
		return err
	}

	c.logger.Debug("encoded transaction",
		zap.String("file", args[0]),
		zap.String("type", u.Action.Type()),
		zap.Int("rlpBytes", len(enc.RLP)))

	if c.cfg.Output == config.OutputJSON {
		return printJSON(map[string]interface{}{
			"rlp":         hexutil.Encode(enc.RLP),
			"hash":        enc.Hash.Hex(),
			"transaction": json.RawMessage(enc.JSON),
		})
	}

	fmt.Printf("Type: %s (tag %s)\n", u.Action.Type(), u.Action.Tag())
	fmt.Printf("RLP:  %s\n", hexutil.Encode(enc.RLP))
	fmt.Printf("Hash: %s\n", enc.Hash.Hex())
	fmt.Printf("JSON:\n%s\n", enc.JSON)
	return nil
}

func (c *cli) cmdDecode(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cctx decode <hex>")
	}

	u, err := api.DecodeHex(args[0])
	if err != nil {
		return err
	}
	c.logger.Debug("decoded transaction", zap.String("type", u.Action.Type()), zap.String("hash", u.Hash().Hex()))

	return printJSON(u)
}

func (c *cli) cmdAddress(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cctx address <private-key>")
	}

	derived, err := api.DeriveAddress(args[0], c.network)
	if err != nil {
		return err
	}

	if c.cfg.Output == config.OutputJSON {
		return printJSON(map[string]string{
			"publicKey": derived.Public.Hex(),
			"accountId": derived.AccountID.Hex(),
			"address":   derived.Address.String(),
		})
	}

	fmt.Printf("Public key: %s\n", derived.Public.Hex())
	fmt.Printf("Account id: %s\n", derived.AccountID.Hex())
	fmt.Printf("Address:    %s\n", derived.Address.String())
	return nil
}

func (c *cli) cmdParseAddress(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cctx parse-address <address>")
	}

	addr, err := primitives.ParsePlatformAddress(args[0])
	if err != nil {
		return err
	}
	if addr.NetworkID() != c.network {
		c.logger.Warn("address is for a different network",
			zap.String("address", addr.NetworkID().String()),
			zap.String("configured", c.network.String()))
	}

	if c.cfg.Output == config.OutputJSON {
		return printJSON(map[string]string{
			"address":   addr.String(),
			"networkId": addr.NetworkID().String(),
			"accountId": addr.AccountID().Hex(),
		})
	}

	fmt.Printf("Address:    %s\n", addr.String())
	fmt.Printf("Network:    %s\n", addr.NetworkID())
	fmt.Printf("Account id: %s\n", addr.AccountID().Hex())
	return nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
