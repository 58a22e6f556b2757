package telegram

const (
	cmdStart = "/start"
	cmdHelp  = "/help"

	msgStart = "Hi! Send me a command like \"open youtube\", \"news\", \"battery\" or \"play skyfall\". Anything else goes to the AI."
	msgHelp  = "Commands:\n" +
		"open google | youtube | instagram | amazon\n" +
		"news\n" +
		"battery\n" +
		"check email\n" +
		"play <song>\n" +
		"ai <question>\n" +
		"Anything else is answered by the AI."
	msgFailed = "Something went wrong while handling your message. Please try again."
)
