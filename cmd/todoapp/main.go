package main

import "github.com/muhammadusama-15/Todo-List-Website/web"

func main() {
	web.RunApp()
}
