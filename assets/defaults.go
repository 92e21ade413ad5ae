package assets

import (
	_ "embed"
)

// ZshHook contains the embedded zsh shell integration.
//
//go:embed hooks/ask.zsh
var ZshHook string

// BashHook contains the embedded bash shell integration.
//
//go:embed hooks/ask.bash
var BashHook string
