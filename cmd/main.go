// cmd/main.go
package main

import (
	"member-api/app"

	_ "member-api/docs"
)

// @title           Member API
// @version         1.0
// @description     Member-facing backend: authentication, phone verification, and encrypted file storage.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
