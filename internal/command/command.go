// Package command holds the bot's static command table.
package command

import "strings"

// Tokens the router matches against message bodies.
const (
	Help    = "/comandos"
	Sticker = "/sticker"
	AIOn    = "/ia"
	AIOff   = "/salir"
)

type entry struct {
	token       string
	description string
}

// table is fixed at startup; RenderHelp preserves this order.
var table = []entry{
	{Help, "muestra esta lista de comandos"},
	{Sticker, "convierte la imagen adjunta en un sticker"},
	{AIOn, "activa el modo IA para hablar con el asistente"},
	{AIOff, "desactiva el modo IA"},
}

// RenderHelp formats the command table as a single message.
func RenderHelp() string {
	var b strings.Builder
	b.WriteString("Comandos disponibles:\n")
	for _, e := range table {
		b.WriteString(e.token)
		b.WriteString(" - ")
		b.WriteString(e.description)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
