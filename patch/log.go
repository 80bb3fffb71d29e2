package patch

import "github.com/nexachain/patchdb/infrastructure/logger"

var log = logger.RegisterSubSystem("PDB1")
