// Package ports defines the contracts between the point-of-service domain and
// its infrastructure: repositories for orders, the archive, the menu document
// and login codes, the session store, and the unit of work binding
// repositories to one transaction.
package ports
