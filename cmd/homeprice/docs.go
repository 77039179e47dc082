package main

// General API documentation for swaggo. Run `swag init -g cmd/homeprice/docs.go` to regenerate ./docs.
//
// @title           homeprice API
// @version         1.0
// @description     HTTP API for real-estate price estimation.
//
// @contact.name   homeprice maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
