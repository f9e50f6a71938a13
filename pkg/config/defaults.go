package config

// Built-in defaults merged under user configuration.

// DefaultServerConfig returns the API server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr: ":8080",
	}
}

// DefaultMemoryConfig selects the in-process session store.
func DefaultMemoryConfig() *MemoryConfig {
	return &MemoryConfig{
		Session: SessionAdapterMemory,
	}
}

// DefaultToolsConfig returns the router defaults. Budget zero means the
// router enforces no token budget.
func DefaultToolsConfig() *ToolsConfig {
	return &ToolsConfig{}
}

// DefaultStreamingConfig delivers events immediately, one per batch.
func DefaultStreamingConfig() *StreamingConfig {
	return &StreamingConfig{
		BufferSize:      1,
		FlushIntervalMS: 250,
	}
}
