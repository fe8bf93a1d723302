package server

// Server объединяет специфичные HTTP серверы, отвечающие за обработку
// конкретных сущностей.
type Server struct {
	ReportServer
	ExclusionServer
}

func NewServer(
	reportServer ReportServer,
	exclusionServer ExclusionServer,
) Server {
	return Server{
		ReportServer:    reportServer,
		ExclusionServer: exclusionServer,
	}
}
