package actions

func ShowVersion() error {
	return showVersion(defaultDeps())
}

func showVersion(deps actionDependencies) error {
	_, _ = deps.Printf("luvr version %v\n", deps.Version())
	return nil
}
