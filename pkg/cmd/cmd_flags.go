// Copyright 2024 The PackMySeal Authors. All rights reserved.

package cmd

// Shared flag names of the pms commands.
const FLAG_VERSION = "version"
const FLAG_YES = "yes"
const FLAG_ALL = "all"
