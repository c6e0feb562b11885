package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/activemedian/median"
)

func contextWithArgs(args ...string) *cli.Context {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_ = fs.Parse(args)
	return cli.NewContext(cli.NewApp(), fs, nil)
}

func TestParseArgs_Defaults(t *testing.T) {
	got, err := parseArgs(contextWithArgs())
	require.NoError(t, err)
	assert.Equal(t, defaultInputPath, got.inputPath)
	assert.Equal(t, defaultOutputPath, got.outputPath)
	assert.Equal(t, median.Fast, got.algorithm)
	assert.Equal(t, 0, got.dumpEntry)
}

func TestParseArgs_AllPositionalArgs(t *testing.T) {
	got, err := parseArgs(contextWithArgs("in.txt", "out.txt", "naive", "7"))
	require.NoError(t, err)
	assert.Equal(t, "in.txt", got.inputPath)
	assert.Equal(t, "out.txt", got.outputPath)
	assert.Equal(t, median.Naive, got.algorithm)
	assert.Equal(t, 7, got.dumpEntry)
}

func TestParseArgs_InvalidAlgorithm(t *testing.T) {
	_, err := parseArgs(contextWithArgs("in.txt", "out.txt", "bogus"))
	assert.Error(t, err)
}

func TestParseArgs_TooManyArguments(t *testing.T) {
	_, err := parseArgs(contextWithArgs("a", "b", "c", "d", "e"))
	assert.Error(t, err)
}

func TestParseArgs_NonIntegerDumpEntry(t *testing.T) {
	_, err := parseArgs(contextWithArgs("in.txt", "out.txt", "fast", "not-a-number"))
	assert.Error(t, err)
}
