// @title           ClubSphere API
// @version         1.0
// @description     REST backend for club membership and event management.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /

package main

import "clubsphere_backend/internal/app"

func main() {
	app.Run()
}
