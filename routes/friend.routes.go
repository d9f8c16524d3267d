package routes

import (
	"campushub_server/middlewares"
	"campushub_server/services"

	"github.com/gofiber/fiber/v2"
)

func friendRoutes(users fiber.Router) {
	users.Post("/add_friend", middlewares.Authenticate, services.AddFriend)
	users.Post("/remove_friend", middlewares.Authenticate, services.RemoveFriend)
	users.Get("/my_friend_list_show", middlewares.Authenticate, services.MyFriendList)
}
