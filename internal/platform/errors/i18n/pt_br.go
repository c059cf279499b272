package i18n

var ptBRCatalog = &Catalog{
	locale: "pt-BR",
	messages: map[Code]string{
		CodeUnknown: "Ocorreu um erro inesperado",

		CodeRandomInvalidWordCount: "A quantidade de palavras deve estar entre 1 e {{.Max}}",
		CodeRandomUnknownSource:    "Fonte de entropia desconhecida {{.Source}}",

		CodeHostOutOfMemory:    "Não é possível alocar {{.Requested}} bytes",
		CodeHostInvalidRecords: "Layout de registros inválido",
	},
}
