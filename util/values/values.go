package values

// Response statuses used by the REST layer. util.StatusCode maps them to
// HTTP status codes.
const (
	Success        = "success"
	Created        = "created"
	NoContent      = "no-content"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
)

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

type contextKey string

const ContextTracingKey = contextKey("tracing-context")

// User-facing messages. The console is a Dutch-language product; these
// strings go to the browser as-is.
const (
	MsgTokenMissing       = "Serverconfiguratiefout: token ontbreekt"
	MsgInternalError      = "Interne serverfout"
	MsgFetchFailed        = "Fout bij het ophalen van gegevens"
	MsgAttachmentIDNeeded = "Bijlage ID ontbreekt"
	MsgDeleteFailed       = "Verwijderen mislukt"
	MsgUploadBlocked      = "Upload geweigerd door de server (bestandsgrootte of beleid)"
	MsgUploadFailed       = "Upload mislukt"
	MsgNoFileProvided     = "Geen bestand meegestuurd"
	MsgSaveNotPermitted   = "Deze wijziging is niet toegestaan in deze situatie"
	MsgSignalNotFound     = "Melding niet gevonden"

	MsgInvalidRequestBody  = "Ongeldige aanvraag"
	MsgUnknownStatus       = "Onbekende status"
	MsgExplanationRequired = "Een toelichting is verplicht voor deze status"
	MsgExplanationTooLong  = "Toelichting is te lang (maximaal 3000 tekens)"
	MsgInvalidSignalID     = "Ongeldig meldingsnummer"
	MsgDuplicatesFailed    = "Fout bij het ophalen van duplicaten"
)
