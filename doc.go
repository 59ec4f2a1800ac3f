// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// taxogo is the main package for the taxo command line tool. It reads
// taxonomies out of a storage directory, wires the CLI, delegates to internal
// packages, and serves as the entry point.
package main
