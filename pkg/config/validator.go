package config

import (
	"fmt"
	"net/url"
)

// validate checks every section of the loaded configuration.
func validate(cfg *Config) error {
	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}
	if err := validateMemory(cfg.Memory); err != nil {
		return err
	}
	if err := validateMCP(cfg.MCP); err != nil {
		return err
	}
	if cfg.Bridge != nil {
		if err := cfg.Bridge.Validate(); err != nil {
			return &ValidationError{Component: "bridge", ID: "bridge", Err: err}
		}
	}
	return nil
}

func validateWorkers(workers []WorkerConfig) error {
	if len(workers) == 0 {
		return &ValidationError{
			Component: "workers", ID: "workers",
			Err: fmt.Errorf("%w: at least one worker is required", ErrMissingRequiredField),
		}
	}

	seen := make(map[string]bool, len(workers))
	for _, w := range workers {
		if w.Name == "" {
			return &ValidationError{
				Component: "worker", ID: "(unnamed)", Field: "name",
				Err: ErrMissingRequiredField,
			}
		}
		if seen[w.Name] {
			return &ValidationError{
				Component: "worker", ID: w.Name,
				Err: fmt.Errorf("%w: duplicate worker name", ErrInvalidValue),
			}
		}
		seen[w.Name] = true

		if len(w.Capabilities) == 0 {
			return &ValidationError{
				Component: "worker", ID: w.Name, Field: "capabilities",
				Err: ErrMissingRequiredField,
			}
		}
		if w.Handler == "" {
			return &ValidationError{
				Component: "worker", ID: w.Name, Field: "handler",
				Err: ErrMissingRequiredField,
			}
		}
	}
	return nil
}

func validateMemory(mem *MemoryConfig) error {
	switch mem.Session {
	case SessionAdapterMemory, SessionAdapterPostgres:
	default:
		return &ValidationError{
			Component: "memory", ID: mem.Session, Field: "session",
			Err: fmt.Errorf("%w: must be %q or %q",
				ErrInvalidValue, SessionAdapterMemory, SessionAdapterPostgres),
		}
	}

	switch mem.RAG {
	case "", RAGAdapterDocs:
	default:
		return &ValidationError{
			Component: "memory", ID: mem.RAG, Field: "rag",
			Err: fmt.Errorf("%w: must be unset or %q",
				ErrInvalidValue, RAGAdapterDocs),
		}
	}
	return nil
}

func validateMCP(mcp *MCPConfig) error {
	seen := make(map[string]bool)
	for _, c := range mcp.Stdio {
		if c.Name == "" {
			return &ValidationError{
				Component: "mcp_stdio", ID: "(unnamed)", Field: "name",
				Err: ErrMissingRequiredField,
			}
		}
		if seen[c.Name] {
			return &ValidationError{
				Component: "mcp_stdio", ID: c.Name,
				Err: fmt.Errorf("%w: duplicate client name", ErrInvalidValue),
			}
		}
		seen[c.Name] = true
		if c.Command == "" {
			return &ValidationError{
				Component: "mcp_stdio", ID: c.Name, Field: "command",
				Err: ErrMissingRequiredField,
			}
		}
	}

	for _, c := range mcp.StreamableHTTP {
		if c.Name == "" {
			return &ValidationError{
				Component: "mcp_http", ID: "(unnamed)", Field: "name",
				Err: ErrMissingRequiredField,
			}
		}
		if seen[c.Name] {
			return &ValidationError{
				Component: "mcp_http", ID: c.Name,
				Err: fmt.Errorf("%w: duplicate client name", ErrInvalidValue),
			}
		}
		seen[c.Name] = true

		parsed, err := url.Parse(c.URL)
		if err != nil || parsed.Scheme == "" {
			return &ValidationError{
				Component: "mcp_http", ID: c.Name, Field: "url",
				Err: fmt.Errorf("%w: %q is not a valid URL", ErrInvalidValue, c.URL),
			}
		}
		if parsed.Scheme != "https" {
			return &ValidationError{
				Component: "mcp_http", ID: c.Name, Field: "url",
				Err: fmt.Errorf("%w: plaintext URLs are not allowed", ErrInvalidValue),
			}
		}
	}
	return nil
}
