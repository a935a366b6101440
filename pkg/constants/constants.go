package constants

const (
	ZipPathSuffix   = ".zip"
	TfsPathSuffix   = ".tfs"
	ProjectFileName = "pms_project.json"
	ModulesDirName  = "Modules"
	CredFileName    = "pms_auth.json"
	LatestVersion   = "latest"
	EntryFileName   = "main.tfs"
)
