package engine

// Show returns the bundled configuration's name, version, and content.
func (e *Engine) Show() (*ShowResult, error) {
	cfg, err := e.load()
	if err != nil {
		return nil, err
	}

	return &ShowResult{
		Name:    cfg.Name,
		Version: cfg.Version,
		Content: string(cfg.Content),
	}, nil
}
