package executor

import "fmt"

func calcRaffleStatusPrefix(status int32) []byte {
	key := fmt.Sprintf("raffle-status:%d:", status)
	return []byte(key)
}

func calcRaffleStatusKey(status int32, index int64) []byte {
	key := fmt.Sprintf("raffle-status:%d:%018d", status, index)
	return []byte(key)
}

func calcRaffleAddrPrefix(addr string) []byte {
	key := fmt.Sprintf("raffle-addr:%s:", addr)
	return []byte(key)
}

func calcRaffleAddrKey(addr string, index int64) []byte {
	key := fmt.Sprintf("raffle-addr:%s:%018d", addr, index)
	return []byte(key)
}
