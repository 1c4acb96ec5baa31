// Package services implements the driving port interfaces.
//
// RunbookService holds the scrape-and-cache orchestration: it fills the
// runbook store from the index on first use and extracts page content
// on demand through the driven ports.
package services
