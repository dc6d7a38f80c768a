// Command web - веб-консоль администратора Asimos (gin + html/template).
// Настройки: config/config.yaml, .env и переменные окружения.
package main

import "asimos_admin/internal/app"

func main() {
	app.Run()
}
