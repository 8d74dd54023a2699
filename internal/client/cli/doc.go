// Package cli implements the interactive standup shell.
//
// The shell reads one command per line, dispatches it to App and prints the
// result. Entries are written through services.EntryService, which routes
// them to the local store or to the sync server depending on the session
// and on server reachability. A background watcher pings the server and
// feeds reachability into the entry service.
package cli
