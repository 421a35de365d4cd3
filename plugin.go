package raffle

import (
	"github.com/33cn/chain33/pluginmgr"
	"github.com/rafflehouse/raffle/commands"
	"github.com/rafflehouse/raffle/executor"
	"github.com/rafflehouse/raffle/rpc"
	ty "github.com/rafflehouse/raffle/types"
)

func init() {
	pluginmgr.Register(&pluginmgr.PluginBase{
		Name:     ty.RaffleX,
		ExecName: executor.GetName(),
		Exec:     executor.Init,
		Cmd:      commands.RaffleCmd,
		RPC:      rpc.Init,
	})
}
