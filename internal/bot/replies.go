package bot

// Fixed user-facing replies. Everything the bot says that is not help text
// or an AI completion comes from here.
const (
	replyFarewell      = "¡Adiós! ¡Hasta la próxima!"
	replyGreeting      = "¡Hola! Soy un bot de WhatsApp. Escribe /comandos para ver lo que puedo hacer."
	replyUnknown       = "Lo siento, no entiendo ese mensaje. Escribe /comandos para ver los comandos o /ia para hablar con el asistente."
	replyWelcomeBack   = "¡Hola! Bienvenido nuevamente. ¿En qué puedo ayudarte hoy?"
	replyNeedImage     = "Por favor, envíame una imagen junto con el comando /sticker."
	replyAIEnabled     = "Modo IA activado. Escríbeme lo que quieras y te responderá el asistente. Usa /salir para terminar."
	replyAIDisabled    = "Modo IA desactivado. Volvemos al modo normal."
	replyAIUnavailable = "Lo siento, no pude generar una respuesta en este momento. Intenta de nuevo más tarde."
)
