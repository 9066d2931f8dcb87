package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewGraphCmd_Shape(t *testing.T) {
	cmd := newGraphCmd(log.New(io.Discard))
	assert.Equal(t, "graph <model.toml> <out.svg>", cmd.Use)
	assert.NoError(t, cmd.Args(cmd, []string{"a", "b"}))
	assert.Error(t, cmd.Args(cmd, []string{"a"}))
}

func TestNewServeCmd_DefaultAddr(t *testing.T) {
	cmd := newServeCmd(log.New(io.Discard))
	flag := cmd.Flags().Lookup("addr")
	assert.Equal(t, ":8080", flag.DefValue)
}
