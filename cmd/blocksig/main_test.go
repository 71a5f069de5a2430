package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyPositionals(t *testing.T) {
	var opts options
	flagSet := newFlagSet(&opts)
	require.NoError(t, flagSet.Parse([]string{"in.dat", "out.sig", "64k"}), "Parse")

	require.NoError(t, applyPositionals(flagSet, &opts), "applyPositionals")
	require.Equal(t, "in.dat", opts.inputPath)
	require.Equal(t, "out.sig", opts.outputPath)
	require.Equal(t, "64k", opts.blockSize)
}

func TestApplyPositionalsPartial(t *testing.T) {
	var opts options
	flagSet := newFlagSet(&opts)
	require.NoError(t, flagSet.Parse([]string{"in.dat", "out.sig"}), "Parse")

	require.NoError(t, applyPositionals(flagSet, &opts), "applyPositionals")
	require.Equal(t, "in.dat", opts.inputPath)
	require.Equal(t, "out.sig", opts.outputPath)
	require.Equal(t, "1m", opts.blockSize, "default block size untouched")
}

func TestApplyPositionalsRejectsDuplicateFlag(t *testing.T) {
	var opts options
	flagSet := newFlagSet(&opts)
	require.NoError(t, flagSet.Parse([]string{"-i", "flag.dat", "in.dat", "out.sig"}), "Parse")

	err := applyPositionals(flagSet, &opts)
	require.ErrorContains(t, err, "--input")
	require.Equal(t, "flag.dat", opts.inputPath, "flag value must win untouched")
}

func TestApplyPositionalsRejectsDuplicateBlockSize(t *testing.T) {
	var opts options
	flagSet := newFlagSet(&opts)
	require.NoError(t, flagSet.Parse([]string{"--block-size", "4k", "in.dat", "out.sig", "8k"}), "Parse")

	err := applyPositionals(flagSet, &opts)
	require.ErrorContains(t, err, "--block-size")
	require.Equal(t, "4k", opts.blockSize, "flag value must win untouched")
}

func TestApplyPositionalsRejectsExtra(t *testing.T) {
	var opts options
	flagSet := newFlagSet(&opts)
	require.NoError(t, flagSet.Parse([]string{"in.dat", "out.sig", "4k", "surplus"}), "Parse")

	require.ErrorContains(t, applyPositionals(flagSet, &opts), "surplus")
}
