// @title           Letify Realty API
// @version         1.0
// @description     Back office API for Letify Realty: listings, inquiries, bookings, messages and mailing lists.
// @contact.name    Letify Realty
// @contact.email   info@letifyrealty.com
// @host            localhost:8000
// @BasePath        /make-server-ef402f1d
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization

package main

import "letify_backend/internal/app"

func main() {
	app.Run()
}
