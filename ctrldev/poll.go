package ctrldev

import "golang.org/x/sys/unix"

// pollIn/pollOut mirror the bits the original ctrldev.c poll
// implementation reports through struct poll_table_struct, expressed
// here with golang.org/x/sys/unix's POLLIN/POLLOUT so callers can feed
// Endpoint.Poll's result straight into unix.PollFd.Revents handling.
const (
	pollIn  = uint32(unix.POLLIN)
	pollOut = uint32(unix.POLLOUT)
)
