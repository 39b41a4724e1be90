// Package mcp_tools exposes the lookup pipeline as a Model Context Protocol
// server over stdio, so agent clients can query domain registrations with
// the same orchestrator the HTTP server uses.
package mcp_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/domainlens/domainlens/lookup_tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/net/idna"
)

// LookupArgs are the arguments for the domain_lookup tool.
type LookupArgs struct {
	Domain string `json:"domain" jsonschema:"The domain name to look up, e.g. example.com. IDN input is accepted."`
}

// Serve runs an MCP server on stdin/stdout until the context is cancelled
// or the client disconnects.
func Serve(ctx context.Context, o *lookup_tools.Orchestrator, version string) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "domainlens",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name: "domain_lookup",
		Description: "Look up the registration record for a domain name. " +
			"Queries RDAP first and falls back to WHOIS, returning registrar, " +
			"important dates, nameservers, statuses, DNSSEC and contacts as JSON.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args LookupArgs) (*mcp.CallToolResult, any, error) {
		domain := args.Domain
		if ascii, err := idna.ToASCII(domain); err == nil {
			domain = ascii
		}

		record, lookupErr := o.Lookup(ctx, domain)
		if lookupErr != nil {
			msg := lookupErr.Classification.Message
			if lookupErr.Classification.Suggestion != "" {
				msg = fmt.Sprintf("%s %s", msg, lookupErr.Classification.Suggestion)
			}
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: msg}},
			}, nil, nil
		}

		payload, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return nil, nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		}, nil, nil
	})

	return server.Run(ctx, &mcp.StdioTransport{})
}
