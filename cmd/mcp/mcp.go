/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, a Model Context Protocol server
// over stdio for resolving tokens and generating CSS.
package mcp

import (
	"context"
	"fmt"
	"io"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	czbuild "bennypowers.dev/czero/build"
	"bennypowers.dev/czero/config"
	"bennypowers.dev/czero/fs"
	"bennypowers.dev/czero/internal/logger"
	"bennypowers.dev/czero/internal/version"
	"bennypowers.dev/czero/merge"
	"bennypowers.dev/czero/theme"
	"bennypowers.dev/czero/token"
	"bennypowers.dev/czero/validator"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run a Model Context Protocol server on stdio",
	Long: `Run a Model Context Protocol server on stdio exposing two tools:
resolve_token, which turns a token reference into CSS, and build_css, which
generates the stylesheet for the project config or an inline one.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdio belongs to the protocol
	logger.SetOutput(io.Discard)

	server := NewServer(fs.NewOSFileSystem(), ".", viper.GetString("config"))
	return server.Run(cmd.Context(), &sdk.StdioTransport{})
}

// ResolveInput are the resolve_token arguments.
type ResolveInput struct {
	Token string `json:"token" jsonschema:"a token reference such as $color-primary or $color-primary / 0.5, or a literal CSS value"`
}

// ResolveOutput is the resolve_token result.
type ResolveOutput struct {
	Token    string `json:"token"`
	CSS      string `json:"css"`
	Variable string `json:"variable,omitempty"`
	Defined  bool   `json:"defined"`
}

// BuildInput are the build_css arguments.
type BuildInput struct {
	Config string `json:"config,omitempty" jsonschema:"inline configuration; omit to use the project config file"`
	Format string `json:"format,omitempty" jsonschema:"format of the inline configuration: yaml (default), json or toml"`
	Part   string `json:"part,omitempty" jsonschema:"document (default), tokens or components"`
}

// BuildOutput is the build_css result.
type BuildOutput struct {
	CSS      string   `json:"css"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

type handlers struct {
	filesystem fs.FileSystem
	rootDir    string
	configPath string
}

// NewServer creates the czero MCP server. Without inline configuration the
// tools read the project config from rootDir on every call.
func NewServer(filesystem fs.FileSystem, rootDir, configPath string) *sdk.Server {
	h := &handlers{filesystem: filesystem, rootDir: rootDir, configPath: configPath}

	server := sdk.NewServer(&sdk.Implementation{Name: "czero", Version: version.Get()}, nil)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "resolve_token",
		Description: "Resolve a czero token reference to its CSS value expression.",
	}, h.resolveToken)
	sdk.AddTool(server, &sdk.Tool{
		Name:        "build_css",
		Description: "Generate czero CSS and report configuration problems.",
	}, h.buildCSS)
	return server
}

func (h *handlers) projectConfig() merge.Tree {
	return config.LoadOrDefault(h.filesystem, h.rootDir, h.configPath).Tree
}

func (h *handlers) resolveToken(ctx context.Context, req *sdk.CallToolRequest, in ResolveInput) (*sdk.CallToolResult, ResolveOutput, error) {
	out := ResolveOutput{Token: in.Token, CSS: token.Resolve(in.Token)}
	if !token.IsReference(in.Token) {
		return nil, out, nil
	}

	ref, err := token.Parse(in.Token)
	if err != nil {
		return nil, ResolveOutput{}, err
	}
	out.Variable = ref.Variable()
	if thm, _ := theme.Load(h.projectConfig()); thm != nil {
		out.Defined = thm.Has(ref)
	}
	return nil, out, nil
}

func (h *handlers) buildCSS(ctx context.Context, req *sdk.CallToolRequest, in BuildInput) (*sdk.CallToolResult, BuildOutput, error) {
	cfg := h.projectConfig()
	if strings.TrimSpace(in.Config) != "" {
		format := in.Format
		if format == "" {
			format = "yaml"
		}
		parsed, err := config.Parse("inline."+format, []byte(in.Config))
		if err != nil {
			return nil, BuildOutput{}, err
		}
		cfg = parsed
	}

	var out BuildOutput
	errs, warnings := validator.Partition(validator.Validate(cfg))
	out.Errors = validator.Messages(errs)
	out.Warnings = validator.Messages(warnings)

	switch in.Part {
	case "", "document":
		out.CSS, _ = czbuild.Document(cfg)
	case "tokens":
		out.CSS = theme.TokensCSS(cfg)
	case "components":
		out.CSS = czbuild.ComponentsCSS(cfg)
	default:
		return nil, BuildOutput{}, fmt.Errorf("unknown part %q (expected document, tokens or components)", in.Part)
	}
	return nil, out, nil
}
