// Package main provides the entry point for the sites administration toolbox.
// It initializes and runs a web server using the Fiber framework that lets
// operators inspect sites, site groups, and users, attach sites to groups,
// reassign users between groups, and register new sites. The application uses
// gorm for data persistence against a PostgreSQL sites database.
package main
