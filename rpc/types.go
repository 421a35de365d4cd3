package rpc

import (
	rpctypes "github.com/33cn/chain33/rpc/types"
)

type channelClient struct {
	rpctypes.ChannelClient
}

type Jrpc struct {
	cli *channelClient
}

func Init(name string, s rpctypes.RPCServer) {
	cli := &channelClient{}
	cli.Init(name, s, &Jrpc{cli: cli}, nil)
}
