package encryption

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/godruoyi/go-snowflake"
)

// InitSnowflake sets MachineID and start time. Document ids are ObjectIDs;
// snowflake ids only name uploaded image files.
func InitSnowflake() {
	machineID := os.Getenv("MACHINE_ID")
	if machineID == "" {
		machineID = "1"
	}
	num, err := strconv.Atoi(machineID)
	if err != nil {
		log.Fatalln("Error to init snowflake invalid MACHINE_ID")
	}

	snowflake.SetMachineID(uint16(num))
	snowflake.SetStartTime(time.Date(2024, 10, 24, 0, 0, 0, 0, time.UTC))
}

// GenerateID generates a new snowflake ID
func GenerateID() uint64 {
	return snowflake.ID()
}
