// Package results persists sweep results. TextSink writes the tab-separated
// files of the classic percolation workflow, Store records runs in SQLite and
// Multi fans a result out to several sinks.
package results
