package dialect

// EVM256 returns the fixed builtin table for the 256-bit source
// dialect: arithmetic, comparison, bitwise, memory, storage,
// environment, logging and control-flow builtins, one entry per
// operation named in the EVM instruction set this translator accepts
// as input.
func EVM256() Dialect {
	return Dialect{
		Name:  "evm",
		Width: Width256,
		Builtins: table(
			// arithmetic
			b("add", 2, 1), b("sub", 2, 1), b("mul", 2, 1), b("div", 2, 1),
			b("mod", 2, 1), b("addmod", 3, 1), b("mulmod", 3, 1), b("exp", 2, 1),
			b("smod", 2, 1), b("signextend", 2, 1),
			// comparison
			b("lt", 2, 1), b("gt", 2, 1), b("slt", 2, 1), b("sgt", 2, 1),
			b("eq", 2, 1), b("iszero", 1, 1),
			// bitwise
			b("and", 2, 1), b("or", 2, 1), b("xor", 2, 1), b("not", 1, 1),
			b("shl", 2, 1), b("shr", 2, 1), b("sar", 2, 1), b("byte", 2, 1),
			// memory
			b("mload", 1, 1), b("mstore", 2, 0), b("mstore8", 2, 0), b("msize", 0, 1),
			// storage
			b("sload", 1, 1), b("sstore", 2, 0),
			// environment
			b("address", 0, 1), b("balance", 1, 1), b("origin", 0, 1),
			b("caller", 0, 1), b("callvalue", 0, 1), b("calldataload", 1, 1),
			b("calldatasize", 0, 1), b("calldatacopy", 3, 0), b("codesize", 0, 1),
			b("codecopy", 3, 0), b("gasprice", 0, 1), b("extcodesize", 1, 1),
			b("extcodecopy", 4, 0), b("extcodehash", 1, 1), b("returndatasize", 0, 1),
			b("returndatacopy", 3, 0), b("blockhash", 1, 1), b("coinbase", 0, 1),
			b("timestamp", 0, 1), b("number", 0, 1), b("difficulty", 0, 1),
			b("gaslimit", 0, 1), b("gas", 0, 1),
			// logging
			variadic("log0", 2, 0), variadic("log1", 3, 0), variadic("log2", 4, 0),
			variadic("log3", 5, 0), variadic("log4", 6, 0),
			// control / lifecycle
			b("create", 3, 1), b("create2", 4, 1), b("call", 7, 1),
			b("callcode", 7, 1), b("delegatecall", 6, 1), b("staticcall", 6, 1),
			b("selfdestruct", 1, 0), b("return", 2, 0), b("revert", 2, 0),
			b("invalid", 0, 0), b("keccak256", 2, 1),
		),
	}
}
