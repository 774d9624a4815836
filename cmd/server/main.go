package main

// @title           Garden Tracker API
// @version         1.0
// @description     Garden planning service: beds, plantings, rotation recommendations and layouts
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
