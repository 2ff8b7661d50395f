package compare

import "strings"

const (
	vacationPrefix = "Actúa como un experto en turismo."
	businessPrefix = "Actuá como experto en emprendimientos."

	markdownLayout = "La respuesta que me das debe estar en formato de Markdown separando el contenido con espacios con el fin de organización, usa títulos en markdown con # y negritas para mantener la respuesta organizada y con sus diferencias de formato, además el contenido no puede estar contenido en un bloque de código, ósea no quiero que uses triple backticks, simplemente dame el markdown con el contenido, además no quiero que me adjuntes el .json solo dame la respuesta."

	vacationSuffix = markdownLayout + `

Además, dame todas las direcciones AL FINAL DE LA RESPUESTA COMPLETA, por ejemplo. En formato Json

Lugar: longitud, latitud. Para esa última sección escribe un título que se llame CORDSLOC`

	businessSuffix = markdownLayout
)

// BuildPrompt wraps the user's text with the mode's role prefix and layout
// instructions. The vacation suffix asks for a trailing CORDSLOC section.
func BuildPrompt(mode Mode, text string) string {
	prefix, suffix := businessPrefix, businessSuffix
	if mode == ModeVacation {
		prefix, suffix = vacationPrefix, vacationSuffix
	}
	return prefix + "\n\n" + strings.TrimSpace(text) + "\n\n" + suffix
}

// DefaultPrompt is the sample request shown to first-time users.
func DefaultPrompt(mode Mode) string {
	if mode == ModeVacation {
		return "Quiero que me hagas un plan de vacaciones en la Fortuna San Carlos. A ese destino vamos a ir por una semana mi esposa (30 años), mi hija (5 años) y yo (30 años)."
	}
	return "Me encuentro en San Vicente, San Carlos, Costa Rica. Quiero que me recomiendes actividades que puedo hacer en este lugar para fomentar el turismo de la zona y que funcionen como mi propio emprendimiento. Ten en cuenta que hay cataratas, zonas verdes, mucha fauna y flora, miradores, entre otros."
}

// endpointFor picks the /parsed variant for vacation mode.
func endpointFor(mode Mode, endpoint string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if mode == ModeVacation {
		return endpoint + "/parsed"
	}
	return endpoint
}
