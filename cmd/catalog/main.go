// Package main is the entry point for the catalog API.
//
// @title Catalog API
// @version 1.0
// @description Product catalog with users, authentication and search.
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import "github.com/shopfront/catalog-api/cmd/catalog/cmd"

func main() {
	cmd.Execute()
}
